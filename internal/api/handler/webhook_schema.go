package handler

// webhookRequest is the envelope ShipEngine posts for every notification.
type webhookRequest struct {
	ResourceURL  string         `json:"resource_url"  validate:"required,url"`
	ResourceType string         `json:"resource_type" validate:"required"`
	Data         map[string]any `json:"data"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}
