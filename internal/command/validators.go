// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/relcheck/relcheck/internal/log"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// LogLevelValidator rejects any log level outside the fixed set. A bad value
// is a usage error and the process exits 1 before any validation output.
func LogLevelValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("log level must be a string")
	}
	for _, v := range log.LevelNames {
		if v == strings.ToLower(s) {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", log.LevelNames)
}
