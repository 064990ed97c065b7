package pepparse_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/pepparse"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pepparse.Errorf(pepparse.ENOTFOUND, "tag %q not found", "dt")

	assert.Equal(t, pepparse.ENOTFOUND, pepparse.ErrorCode(err))
	assert.Equal(t, "tag \"dt\" not found", pepparse.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("pep index: %w", pepparse.Errorf(pepparse.EUNAVAILABLE, "timeout"))

	assert.Equal(t, pepparse.EUNAVAILABLE, pepparse.ErrorCode(err))
	assert.Equal(t, "timeout", pepparse.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, pepparse.EINTERNAL, pepparse.ErrorCode(err))
	assert.Equal(t, "Internal error.", pepparse.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pepparse.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pepparse.ErrorMessage(nil))
}
