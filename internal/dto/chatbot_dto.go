package dto

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type SendMessageResponse struct {
	Reply string `json:"reply"`
}
