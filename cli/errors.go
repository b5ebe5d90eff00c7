package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc"
)

var ErrConfigNotFound = errors.New(heredoc.Doc(`
	Config file not found. Loading from defaults...

	Run "backoffice config init" to initialize a new configuration file
	Run "backoffice help environment" for more information.

	Alternatively, make a "backoffice.yaml" file in the current directory from the example given
`))
