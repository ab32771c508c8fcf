package app

import (
	"time"

	"podrefs/internal/adapters"
	"podrefs/internal/ports"
)

type Service struct {
	Manifests    ports.ManifestPort
	Hooks        ports.HookRunnerPort
	OutputReader ports.OutputReaderPort
	Clock        func() time.Time
}

func NewService() Service {
	return Service{
		Manifests:    adapters.NewManifestFileAdapter(),
		Hooks:        adapters.NewShellHookRunner(),
		OutputReader: adapters.NewOutputReaderAdapter(),
		Clock:        time.Now,
	}
}
