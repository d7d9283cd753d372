package entity

import "errors"

var (
	ErrUnknownTool       = errors.New("unknown tool")
	ErrArity             = errors.New("wrong number of parameters")
	ErrEmptyCommand      = errors.New("empty command")
	ErrCommandNotAllowed = errors.New("command not allowed")
	ErrCommandTimeout    = errors.New("command timed out")
	ErrNoJSONObject      = errors.New("no JSON object in response")
	ErrMissingTool       = errors.New("decision has no tool")
)
