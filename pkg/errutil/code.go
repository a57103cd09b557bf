package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	muBadRoute
	muNotFound
	muIllegalParameter
	muInvalidParameter
	muServerInternal
	muPermissionDenied
	muFrequencyLimited
	muIllegalName
	muIllegalPlayerCount
	muPlayerNotFound
	muRoleNotInGame
	muSessionNotFound
	muRoundNotFound
	muWrongRoundKind
	muUnknownField
	muRoundIncomplete
)

var errs = map[error]int{
	ErrBadRoute:           muBadRoute,
	ErrNotFound:           muNotFound,
	ErrIllegalParameter:   muIllegalParameter,
	ErrInvalidParameter:   muInvalidParameter,
	ErrServerInternal:     muServerInternal,
	ErrPermissionDenied:   muPermissionDenied,
	ErrFrequencyLimited:   muFrequencyLimited,
	ErrIllegalName:        muIllegalName,
	ErrIllegalPlayerCount: muIllegalPlayerCount,
	ErrPlayerNotFound:     muPlayerNotFound,
	ErrRoleNotInGame:      muRoleNotInGame,
	ErrSessionNotFound:    muSessionNotFound,
	ErrRoundNotFound:      muRoundNotFound,
	ErrWrongRoundKind:     muWrongRoundKind,
	ErrUnknownField:       muUnknownField,
	ErrRoundIncomplete:    muRoundIncomplete,
}
