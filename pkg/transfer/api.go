package transfer

import "time"

// InitiateRequest asks the bridge to start moving SourceAmount from
// SourceChain to DestinationChain.
type InitiateRequest struct {
	SourceChain      string `json:"source_chain" validate:"required,max=64"`
	DestinationChain string `json:"destination_chain" validate:"required,max=64,nefield=SourceChain"`
	// SourceAmount is a decimal string, e.g. "12.5".
	SourceAmount      string `json:"source_amount" validate:"required"`
	DestinationAmount string `json:"destination_amount,omitzero"`
}

// Response is the JSON view of a transfer.
type Response struct {
	BridgeID              string     `json:"bridge_id"`
	SourceChain           string     `json:"source_chain"`
	DestinationChain      string     `json:"destination_chain"`
	SourceAmount          string     `json:"source_amount"`
	DestinationAmount     string     `json:"destination_amount,omitzero"`
	Status                Status     `json:"status"`
	Confirmations         int        `json:"confirmations"`
	RequiredConfirmations int        `json:"required_confirmations"`
	TransactionHash       string     `json:"transaction_hash,omitzero"`
	InitiatedAt           time.Time  `json:"initiated_at"`
	CompletedAt           *time.Time `json:"completed_at,omitzero"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// ToResponse converts t to its JSON view.
func (t *Transfer) ToResponse() *Response {
	resp := &Response{
		BridgeID:              t.BridgeID,
		SourceChain:           t.SourceChain,
		DestinationChain:      t.DestinationChain,
		SourceAmount:          t.SourceAmount.String(),
		Status:                t.Status,
		Confirmations:         t.Confirmations,
		RequiredConfirmations: t.EffectiveRequiredConfirmations(),
		TransactionHash:       t.TransactionHash,
		InitiatedAt:           t.InitiatedAt,
		CompletedAt:           t.CompletedAt,
		UpdatedAt:             t.UpdatedAt,
	}
	if t.DestinationAmount != nil {
		resp.DestinationAmount = t.DestinationAmount.String()
	}
	return resp
}
