package dto

// ChatbotRequest representa a mensagem enviada ao assistente virtual
type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatbotResponse representa a resposta do assistente virtual
type ChatbotResponse struct {
	Reply string `json:"reply"`
}
