package clean

import (
	"github.com/logrusorgru/aurora"
)

type App interface {
	GetAurora() aurora.Aurora
}
