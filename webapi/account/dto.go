package account

// OpenAccountRequest opens a new account. The opening balance defaults to 0.
type OpenAccountRequest struct {
	InitialBalance float64 `json:"initial_balance"`
}

// AmountRequest carries a bare amount. Deposits and plain withdrawals accept
// non-positive amounts by design, so no positivity constraint is declared
// here; the validated paths enforce their own bounds in the domain.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

// TransferRequest performs the threshold-checked transfer to another account.
type TransferRequest struct {
	DestinationID string  `json:"destination_id" validate:"required,uuid"`
	Amount        float64 `json:"amount"`
}

// FxTransferRequest performs a cross-currency RON/EUR transfer.
type FxTransferRequest struct {
	DestinationID string  `json:"destination_id" validate:"required,uuid"`
	Amount        float64 `json:"amount"`
	Direction     string  `json:"direction" validate:"required,oneof=ron-to-eur eur-to-ron"`
}

// ConvertRequest converts an amount between RON and EUR without moving funds.
type ConvertRequest struct {
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction" validate:"required,oneof=ron-to-eur eur-to-ron"`
}

// ConversionResponse is the payload returned by the convert endpoint.
type ConversionResponse struct {
	Amount    float64 `json:"amount"`
	Converted float64 `json:"converted"`
	Direction string  `json:"direction"`
}

// InterestResponse is the payload returned by the interest projection endpoint.
type InterestResponse struct {
	Days      int     `json:"days"`
	Projected float64 `json:"projected"`
}
