package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEditChangesValidate(t *testing.T) {
	require.Nil(t, EditChanges{"rank": "Senior Officer", "date_of_transfer": "2025-11-03"}.Validate())
	require.NotNil(t, EditChanges{"salary": "1000000"}.Validate())
	require.NotNil(t, EditChanges{"date_of_birth": "03/11/1970"}.Validate())
}

func TestEditChangesToUpdateMap(t *testing.T) {
	updMap, err := EditChanges{
		"full_name":            "Adamu A. Bello",
		"date_of_transfer":     "2025-11-03",
		"date_of_confirmation": "",
	}.ToUpdateMap()
	require.Nil(t, err)
	require.Equal(t, "Adamu A. Bello", updMap["full_name"])
	require.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), updMap["date_of_transfer"])
	require.Nil(t, updMap["date_of_confirmation"])

	_, err = EditChanges{"salary": "1000000"}.ToUpdateMap()
	require.NotNil(t, err)
}
