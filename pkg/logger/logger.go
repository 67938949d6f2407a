package logger

import (
	"log"
	"os"
)

// Logger é a interface de logging usada em toda a aplicação
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// StdLogger implementa Logger usando a biblioteca padrão
type StdLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger() Logger {
	return &StdLogger{
		infoLogger:  log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLogger: log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// Info registra uma mensagem informativa
func (l *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	l.infoLogger.Println(append([]interface{}{msg}, keysAndValues...)...)
}

// Error registra uma mensagem de erro
func (l *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	l.errorLogger.Println(append([]interface{}{msg}, keysAndValues...)...)
}

// Debug registra uma mensagem de depuração
func (l *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.debugLogger.Println(append([]interface{}{msg}, keysAndValues...)...)
}

// Warn registra uma mensagem de aviso
func (l *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.warnLogger.Println(append([]interface{}{msg}, keysAndValues...)...)
}
