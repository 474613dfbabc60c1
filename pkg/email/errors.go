package email

import (
	"errors"
	"fmt"
)

// ErrDisabled is returned by Send when delivery is switched off in config.
var ErrDisabled = errors.New("email is disabled")

type ErrInvalidMessage struct{ Reason string }

func (e ErrInvalidMessage) Error() string { return "invalid email message: " + e.Reason }

// SendError is an SMTP delivery failure against Host.
type SendError struct {
	Host string
	Err  error
}

func (e SendError) Error() string { return fmt.Sprintf("smtp send via %s failed: %v", e.Host, e.Err) }
func (e SendError) Unwrap() error { return e.Err }
