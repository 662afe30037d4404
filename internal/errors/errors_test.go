package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SnickALt21/juego-pardo/internal/errors"
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
			message:  "mission not found",
			expected: "NOT_FOUND: mission not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "minimum level 10 required",
			expected: "FAILED_PRECONDITION: minimum level 10 required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("mission not found").
		WithMeta("mission_id", 42).
		WithMeta("user_id", "456")

	s.Assert().Equal(42, err.Meta["mission_id"])
	s.Assert().Equal("456", err.Meta["user_id"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("mission not found")
	wrapped := errors.Wrap(base, "failed to complete mission")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("failed to complete mission", wrapped.Message)
	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to record match")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "no-op"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("redis: nil")
	err := errors.WrapWithCode(base, errors.CodeNotFound, "match not found")

	s.Assert().True(errors.IsNotFound(err))
	s.Assert().ErrorIs(err, base)
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("gone")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("gone", errors.GetMessage(errors.NotFound("gone")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid argument", errors.InvalidArgument("bad"), http.StatusBadRequest},
		{"not found", errors.NotFound("gone"), http.StatusNotFound},
		{"failed precondition", errors.FailedPrecondition("too low"), http.StatusPreconditionFailed},
		{"unavailable", errors.Unavailable("down"), http.StatusServiceUnavailable},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.status, errors.HTTPStatus(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestHTTPBody() {
	body := errors.HTTPBody(errors.NotFound("mission not found"))

	s.Assert().Equal("mission not found", body["error"])
	s.Assert().Equal("NOT_FOUND", body["code"])
	s.Assert().NotContains(body, "fields")
}
