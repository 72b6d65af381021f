package services

import (
	logging "github.com/inconshreveable/log15"
)

var log logging.Logger = logging.New("module", "services")

// SetLogger replaces the package logger; the demo binary routes it into
// its own handler tree.
func SetLogger(l logging.Logger) {
	log = l
}
