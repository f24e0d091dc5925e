package response

// QuoteResponse previews pricing for the participants step of the wizard.
type QuoteResponse struct {
	FamilyCategory string   `json:"family_category"`
	TotalAmount    int      `json:"total_amount"`
	ShirtSizes     []string `json:"shirt_sizes"`
}
