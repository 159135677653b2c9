package domain

// FailoverStrategy decides what happens when an authenticate call cannot be
// completed: either the error is returned to the caller or a synthetic
// verdict with the configured default action is produced instead.
type FailoverStrategy struct {
	throwOnFailure bool
	defaultAction  Action
}

func ThrowFailoverStrategy() FailoverStrategy {
	return FailoverStrategy{throwOnFailure: true}
}

func NewFailoverStrategy(defaultAction Action) FailoverStrategy {
	return FailoverStrategy{defaultAction: defaultAction}
}

func (s FailoverStrategy) ThrowOnFailure() bool {
	return s.throwOnFailure
}

func (s FailoverStrategy) DefaultAction() Action {
	return s.defaultAction
}
