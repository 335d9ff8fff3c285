package main

import (
	"errors"

	"github.com/pogojump/pogojump-api/pkg/mailer"
)

type outcome int

const (
	outcomeAck outcome = iota
	outcomeRetry
	outcomeDrop
)

func (o outcome) String() string {
	switch o {
	case outcomeAck:
		return "ack"
	case outcomeRetry:
		return "retry"
	default:
		return "drop"
	}
}

// decide settles a delivery. A failed send is requeued once; a redelivered
// message that fails again is dropped.
func decide(err error, redelivered bool) outcome {
	switch {
	case err == nil:
		return outcomeAck
	case errors.Is(err, mailer.ErrBadJob), redelivered:
		return outcomeDrop
	default:
		return outcomeRetry
	}
}
