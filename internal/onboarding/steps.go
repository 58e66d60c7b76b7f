package onboarding

import "errors"

type Step string

const (
	StepOnboarding      Step = "onboarding"
	StepLogin           Step = "login"
	StepGender          Step = "gender"
	StepAge             Step = "age"
	StepHeight          Step = "height"
	StepWeight          Step = "weight"
	StepGoals           Step = "goals"
	StepTargetWeight    Step = "targetWeight"
	StepEventDate       Step = "eventDate"
	StepActivityLevel   Step = "activityLevel"
	StepWeightLossSpeed Step = "weightLossSpeed"
	StepHealthCondition Step = "healthCondition"
	StepName            Step = "name"
	StepSummary         Step = "summary"
)

// Steps lists every step in display order.
var Steps = []Step{
	StepOnboarding,
	StepLogin,
	StepGender,
	StepAge,
	StepHeight,
	StepWeight,
	StepGoals,
	StepTargetWeight,
	StepEventDate,
	StepActivityLevel,
	StepWeightLossSpeed,
	StepHealthCondition,
	StepName,
	StepSummary,
}

var (
	ErrUnknownStep       = errors.New("unknown onboarding step")
	ErrInvalidTransition = errors.New("onboarding step is not reachable from the current step")
	ErrNoPreviousStep    = errors.New("current onboarding step has no previous step")
	ErrFlowFinished      = errors.New("onboarding flow has no further steps")
)

type transition struct {
	next []Step // first entry is the default forward edge
	back Step
}

var transitions = map[Step]transition{
	StepOnboarding:      {next: []Step{StepGender, StepLogin}},
	StepLogin:           {next: []Step{StepGender}, back: StepOnboarding},
	StepGender:          {next: []Step{StepAge}, back: StepOnboarding},
	StepAge:             {next: []Step{StepHeight}, back: StepGender},
	StepHeight:          {next: []Step{StepWeight}, back: StepAge},
	StepWeight:          {next: []Step{StepGoals}, back: StepHeight},
	StepGoals:           {next: []Step{StepTargetWeight}, back: StepWeight},
	StepTargetWeight:    {next: []Step{StepEventDate}, back: StepGoals},
	StepEventDate:       {next: []Step{StepActivityLevel}, back: StepTargetWeight},
	StepActivityLevel:   {next: []Step{StepWeightLossSpeed}, back: StepEventDate},
	StepWeightLossSpeed: {next: []Step{StepHealthCondition}, back: StepActivityLevel},
	StepHealthCondition: {next: []Step{StepName}, back: StepWeightLossSpeed},
	StepName:            {next: []Step{StepSummary}, back: StepHealthCondition},
	StepSummary:         {back: StepName},
}

func ParseStep(value string) (Step, error) {
	s := Step(value)
	if _, ok := transitions[s]; !ok {
		return "", ErrUnknownStep
	}
	return s, nil
}

func (s Step) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether to is a next or back neighbour of from.
func CanTransition(from, to Step) bool {
	t, ok := transitions[from]
	if !ok || !to.Valid() {
		return false
	}
	if t.back != "" && t.back == to {
		return true
	}
	for _, n := range t.next {
		if n == to {
			return true
		}
	}
	return false
}

// Allowed returns the steps reachable from s, forward edges first.
func Allowed(s Step) []Step {
	t, ok := transitions[s]
	if !ok {
		return nil
	}
	out := append([]Step{}, t.next...)
	if t.back != "" {
		out = append(out, t.back)
	}
	return out
}

func (s Step) index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}
