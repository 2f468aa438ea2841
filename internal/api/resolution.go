package api

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Resolution is the history record written for every classification or
// fee decision served over the API.
type Resolution struct {
	ID         uint      `gorm:"primarykey"`
	Time       time.Time `json:"time"`
	Input      string    `json:"input"`
	Kind       string    `json:"kind"`
	AmountMsat uint64    `json:"amount_msat"`
	FeeMsat    uint64    `json:"fee_msat"`
	Trampoline bool      `json:"trampoline"`
	Success    bool      `json:"success"`
}

type ResolutionOption func(r *Resolution)

func ResolutionAmount(amountMsat uint64) ResolutionOption {
	return func(r *Resolution) {
		r.AmountMsat = amountMsat
	}
}

func ResolutionFee(feeMsat uint64, trampoline bool) ResolutionOption {
	return func(r *Resolution) {
		r.FeeMsat = feeMsat
		r.Trampoline = trampoline
	}
}

func (s *Server) logResolution(input, kind string, success bool, opts ...ResolutionOption) {
	resolution := &Resolution{
		Time:    time.Now(),
		Input:   input,
		Kind:    kind,
		Success: success,
	}
	for _, opt := range opts {
		opt(resolution)
	}
	if s.database == nil {
		return
	}
	if tx := s.database.Save(resolution); tx.Error != nil {
		log.Errorf("[api] Could not log resolution: %s", tx.Error)
	}
}
