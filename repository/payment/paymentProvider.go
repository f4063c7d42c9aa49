package paymentrepo

type ChargeReq struct {
	ExternalID  string
	Amount      float64
	Description string
}

type ChargeResp struct {
	PaymentID string
}

// Provider is the payment gateway boundary. The only implementation is
// the mock below; no real money moves anywhere in this system.
type Provider interface {
	Charge(req ChargeReq) (*ChargeResp, error)
}
