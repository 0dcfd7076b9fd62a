package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorRendering(t *testing.T) {
	err := InvalidArgumentError(nil, "post title is empty")
	assert.Equal(t, "invalid argument: post title is empty", err.Error())

	cause := fmt.Errorf("yaml: line 3")
	err = InvalidArgumentError(cause, "cannot parse seed catalog")
	assert.Equal(t, "invalid argument: cannot parse seed catalog: yaml: line 3", err.Error())
	assert.True(t, errors.Is(err, cause), "cause must unwrap")
}

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{InvalidArgumentError(nil, "x"), CodeInvalidArgument},
		{NotFoundError(nil, "x"), CodeNotFound},
		{PermissionError(nil, "x"), CodePermission},
		{SystemError(errors.New("boom")), CodeSystem},
	}
	for _, tc := range cases {
		var appErr *AppError
		require.True(t, errors.As(tc.err, &appErr))
		assert.Equal(t, tc.code, appErr.Code)
	}
}
