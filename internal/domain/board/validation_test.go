package board_test

import (
	"testing"

	"github.com/ganot/taskboard/internal/domain/board"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateInput(t *testing.T) {
	tests := []struct {
		name    string
		req     board.CreateRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  board.CreateRequest{Title: "Build API", Description: "Design the REST layer", People: 3},
		},
		{
			name:    "empty title",
			req:     board.CreateRequest{Title: "", Description: "something", People: 1},
			wantErr: true,
		},
		{
			name:    "whitespace title",
			req:     board.CreateRequest{Title: "   ", Description: "something", People: 1},
			wantErr: true,
		},
		{
			name:    "empty description",
			req:     board.CreateRequest{Title: "Build API", Description: "", People: 1},
			wantErr: true,
		},
		{
			name:    "zero people",
			req:     board.CreateRequest{Title: "Build API", Description: "something", People: 0},
			wantErr: true,
		},
		{
			name:    "too many people",
			req:     board.CreateRequest{Title: "Build API", Description: "something", People: 6},
			wantErr: true,
		},
		{
			name: "boundary people",
			req:  board.CreateRequest{Title: "Build API", Description: "something", People: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := board.ValidateCreateInput(tt.req)
			if tt.wantErr {
				require.ErrorIs(t, err, board.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
		})
	}
}
