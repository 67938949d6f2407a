package main

// @title           SkyVoyage Booking API
// @version         1.0
// @description     API de reservas de voos com atendimento em tempo real e assistente virtual

// @contact.name   API Support
// @contact.email  support@skyvoyage.example

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
