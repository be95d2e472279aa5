package budget

import "errors"

var (
	ErrUnknownPolicy      = errors.New("unknown military eligibility policy")
	ErrOptionNotAvailable = errors.New("the option is not available for this category")
	ErrChoiceMissing      = errors.New("no option was chosen for the category")
	ErrSessionState       = errors.New("the budget session does not accept this action in its current state")
	ErrNameMissing        = errors.New("the participant name must be set")
	ErrProfessionMissing  = errors.New("a profession must be selected")
	ErrBudgetNotBalanced  = errors.New("the remaining budget must be exactly zero before submitting")
	ErrTwinName           = errors.New("the participant name must not end with the military twin suffix")
)
