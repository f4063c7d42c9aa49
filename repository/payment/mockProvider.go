package paymentrepo

import "github.com/google/uuid"

type mockProvider struct{}

// NewMock returns a provider that accepts every charge and mints a fresh
// opaque payment id per call. No ledger is kept and retried charges get
// distinct ids; dedup was never part of the contract.
func NewMock() Provider { return mockProvider{} }

func (mockProvider) Charge(req ChargeReq) (*ChargeResp, error) {
	return &ChargeResp{PaymentID: "pay_" + uuid.NewString()}, nil
}
