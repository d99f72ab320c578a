package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/card-forge/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "template not found",
			expected: "NOT_FOUND: template not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "input is required",
			expected: "INVALID_ARGUMENT: input is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFoundf("template %s", "fire_card.png").WithMeta("element", "Fire")
	wrapped := errors.Wrap(base, "failed to render card")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("Fire", wrapped.Meta["element"])
	s.True(errors.IsNotFound(wrapped))
	s.ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	wrapped := errors.Wrapf(fmt.Errorf("disk"), "load %s", "font")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("INTERNAL: load font: disk", wrapped.Error())
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeUnavailable, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(errors.NotFound("x"), errors.CodeUnavailable, "model loading")

	s.True(errors.IsUnavailable(wrapped))
	s.Equal("model loading", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.NoError(errors.NewValidationBuilder().Build())

	vb := errors.NewValidationBuilder()
	vb.RequiredField("Pool").InvalidField("Policy", "unknown")
	errors.ValidateRange("Count", 11, 0, 10, vb)
	err := vb.Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"INVALID_ARGUMENT: validation failed: Count: must be between 0 and 10; "+
			"Policy: is invalid: unknown; Pool: is required",
		err.Error(),
	)
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "not found", err: errors.NotFound("template"), code: codes.NotFound},
		{name: "invalid", err: errors.InvalidArgument("input"), code: codes.InvalidArgument},
		{name: "wrapped unavailable", err: errors.Wrap(errors.Unavailable("model"), "ctx"), code: codes.Unavailable},
		{name: "deadline", err: fmt.Errorf("artwork: %w", context.DeadlineExceeded), code: codes.DeadlineExceeded},
		{name: "plain", err: fmt.Errorf("boom"), code: codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.code, st.Code())
		})
	}

	s.NoError(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	err := errors.FromGRPCError(status.Error(codes.NotFound, "card missing"))

	s.True(errors.IsNotFound(err))
	s.Equal("card missing", errors.GetMessage(err))
	s.NoError(errors.FromGRPCError(nil))
}
