package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunAssessJobFlagValidation(t *testing.T) {
	reset := func() {
		assessConfigPath = ""
		assessJob = ""
		assessJobText = ""
	}

	t.Run("requires a job source", func(t *testing.T) {
		reset()
		err := runAssess(assessCmd, nil)
		assert.ErrorContains(t, err, "--job or --job-text")
	})

	t.Run("rejects both job sources", func(t *testing.T) {
		reset()
		assessJob = "job.txt"
		assessJobText = "some text"
		err := runAssess(assessCmd, nil)
		assert.ErrorContains(t, err, "mutually exclusive")
	})
}
