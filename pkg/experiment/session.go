package experiment

import (
	"time"

	"github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

// Session identifies a single experiment run.
type Session struct {
	// ExperimentID is the unique identifier under which results and
	// metadata of the run are kept.
	ExperimentID string
	// Name is a human readable run name carrying the start timestamp.
	Name string
	// Started is the moment the session was created.
	Started time.Time
}

// NewSession returns a fresh experiment identity.
func NewSession() (Session, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return Session{}, errors.Wrap(err, "could not create uuid")
	}

	now := time.Now()
	return Session{
		ExperimentID: u.String(),
		Name:         now.Format("2006-01-02T15h04m05s_") + u.String(),
		Started:      now,
	}, nil
}
