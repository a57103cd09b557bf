package errutil

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrBadRoute           = errors.New("bad route")
	ErrNotFound           = errors.New("not found")
	ErrIllegalParameter   = errors.New("illegal parameter")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrServerInternal     = errors.New("server internal error")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrFrequencyLimited   = errors.New("frequency limited")
	ErrIllegalName        = errors.New("illegal player name")
	ErrIllegalPlayerCount = errors.New("player count must be between 3 and 6")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrRoleNotInGame      = errors.New("role does not exist for this player count")
	ErrSessionNotFound    = errors.New("session not found")
	ErrRoundNotFound      = errors.New("round not found")
	ErrWrongRoundKind     = errors.New("wrong round kind")
	ErrUnknownField       = errors.New("unknown round field")
	ErrRoundIncomplete    = errors.New("fix incomplete or incorrect rounds first")
)

//Code code for the error, wrapped errors resolve to their cause
func Code(err error) int {
	if c, ok := errs[pkgerrors.Cause(err)]; ok {
		return c
	}
	return Unknown
}
