package datasync

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordbook/internal/database"
)

func TestSQLiteSink_WriteAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "replaces every row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM entry_values").WillReturnResult(sqlmock.NewResult(0, 5))
				mock.ExpectExec("DELETE FROM entries").WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("INSERT INTO entries").
					WithArgs(0, "run", "to move fast", "verbs").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO entry_values").
					WithArgs("run", "example", 0, "I run every day").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO entry_values").
					WithArgs("run", "synonym", 0, "jog").
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectExec("INSERT INTO entry_values").
					WithArgs("run", "synonym", 1, "sprint").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectExec("INSERT INTO entry_values").
					WithArgs("run", "tag", 0, "fitness").
					WillReturnResult(sqlmock.NewResult(4, 1))
				mock.ExpectExec("INSERT INTO entries").
					WithArgs(1, "apple", "a fruit", "").
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "insert failure rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM entry_values").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("DELETE FROM entries").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO entries").
					WithArgs(0, "run", "to move fast", "verbs").
					WillReturnError(fmt.Errorf("database is locked"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "delete failure rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM entry_values").WillReturnError(fmt.Errorf("no such table: entry_values"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setupMock(mock)
			sink := NewSQLiteSink(sqlx.NewDb(db, database.DriverName))

			err = sink.WriteAll(context.Background(), newTestDictionary(t))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
