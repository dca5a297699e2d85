package todo

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workforce/backend/foundation/web"
)

func TestOwnedOrNotFound(t *testing.T) {
	require.NoError(t, ownedOrNotFound(nil))

	// a todo under another account looks missing, never forbidden
	err := ownedOrNotFound(sql.ErrNoRows)
	require.Error(t, err)

	var reqErr *web.Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.Status)
	assert.Contains(t, reqErr.Error(), "todo not found")

	err = ownedOrNotFound(errors.New("connection reset"))
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
}
