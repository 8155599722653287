package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Policy determines which team member receives a booking.
type Policy string

const (
	PolicyOwner        Policy = "owner"
	PolicyRoundRobin   Policy = "round_robin"
	PolicyLoadBalanced Policy = "load_balanced"
)

func (p Policy) String() string {
	return string(p)
}

func (p Policy) IsValid() bool {
	switch p {
	case PolicyOwner, PolicyRoundRobin, PolicyLoadBalanced:
		return true
	default:
		return false
	}
}

// MultiPerson reports whether the policy assigns across a team rather
// than always to the owner.
func (p Policy) MultiPerson() bool {
	return p == PolicyRoundRobin || p == PolicyLoadBalanced
}
