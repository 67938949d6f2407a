package activity

import (
	"context"

	"github.com/skyvoyage/booking-api/internal/domain/history"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

// Notifier anuncia que dados agregados mudaram e os painéis conectados
// devem se atualizar
type Notifier interface {
	DataChanged()
}

// Recorder registra atividades no histórico e propaga a mudança para os
// painéis conectados. O registro é melhor-esforço: uma falha de escrita é
// logada e a operação de negócio que a originou segue normalmente.
type Recorder struct {
	history  history.Repository
	notifier Notifier
	logger   logger.Logger
}

// NewRecorder cria uma nova instância de Recorder
func NewRecorder(hist history.Repository, notifier Notifier, log logger.Logger) *Recorder {
	return &Recorder{
		history:  hist,
		notifier: notifier,
		logger:   log,
	}
}

// Record registra a atividade e notifica os painéis. userID é opcional:
// atividades anônimas (antes do login, por exemplo) passam nil.
func (r *Recorder) Record(ctx context.Context, activity string, userID *string) {
	if activity == "" {
		return
	}

	entry := history.NewEntry(activity, userID)
	if err := r.history.Create(ctx, entry); err != nil {
		r.logger.Error("erro ao registrar atividade", "activity", activity, "error", err)
		return
	}

	if r.notifier != nil {
		r.notifier.DataChanged()
	}
}
