package flag

import "github.com/elC0mpa/aws-costpilot/model"

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}
