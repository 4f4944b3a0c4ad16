// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	userErrors "github.com/qolzam/jobly/users/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	assert.ErrorIs(t, wrapError("create", &pq.Error{Code: "22001"}), userErrors.ErrInvalidUserData)
	assert.ErrorIs(t, wrapError("update", &pq.Error{Code: "23514"}), userErrors.ErrInvalidUserData)
	assert.ErrorIs(t, wrapError("find", sql.ErrConnDone), userErrors.ErrDatabaseOperation)
	assert.NotErrorIs(t, wrapError("find", sql.ErrConnDone), userErrors.ErrInvalidUserData)
}
