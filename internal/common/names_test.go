package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimQualifier(t *testing.T) {
	tests := []struct {
		name, prefix, want string
	}{
		{"Ref.cmdDisp.CMD_NO_OP", "Ref", "cmdDisp.CMD_NO_OP"},
		{"Ref.cmdDisp.CMD_NO_OP", "", "Ref.cmdDisp.CMD_NO_OP"},
		{"Other.Type", "Ref", "Other.Type"},
		{"Reference.Type", "Ref", "Reference.Type"},
		{"U32", "Ref", "U32"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimQualifier(tt.name, tt.prefix))
		})
	}
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "CMD_NO_OP", ShortName("Ref.cmdDisp.CMD_NO_OP"))
	assert.Equal(t, "U32", ShortName("U32"))
}
