package domain

type Action string

const (
	ActionAllow     Action = "allow"
	ActionDeny      Action = "deny"
	ActionChallenge Action = "challenge"
)

type Origin string

const (
	OriginBackend  Origin = "backend"
	OriginFailover Origin = "failover"
)

// Verdict is the outcome of a risk-authentication call.
// It is constructed once and never mutated afterwards.
type Verdict struct {
	Action Action
	UserId string
	Origin Origin

	// FailoverReason is set only on verdicts with OriginFailover.
	FailoverReason string

	Device     *Device
	RiskPolicy *RiskPolicy
}

func VerdictFromTransport(resp AuthenticateResponse) Verdict {
	return Verdict{
		Action:     resp.Action,
		UserId:     resp.UserId,
		Origin:     OriginBackend,
		Device:     resp.Device,
		RiskPolicy: resp.RiskPolicy,
	}
}

func FailoverVerdict(action Action, userId string, reason string) Verdict {
	return Verdict{
		Action:         action,
		UserId:         userId,
		Origin:         OriginFailover,
		FailoverReason: reason,
	}
}
