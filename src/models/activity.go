package models

// Activity กิจกรรมนอกหลักสูตร keyed by Name in the registry
type Activity struct {
	Name            string   `json:"-" yaml:"name" validate:"required"`
	Description     string   `json:"description" yaml:"description" validate:"required" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" yaml:"schedule" validate:"required" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants" validate:"gt=0" example:"12"`
	Participants    []string `json:"participants" yaml:"participants" validate:"unique,dive,required" example:"michael@mergington.edu,daniel@mergington.edu"`
}

// Clone returns a copy that shares no memory with the receiver.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant reports whether email is already signed up.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// IsFull reports whether no slot remains.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

