package roulette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     BetRequest
		wantErr bool
	}{
		{
			name: "valid number bet",
			req:  BetRequest{UserID: "u1", Kind: BetNumber, Number: 7, Stake: 10},
		},
		{
			name: "valid zero number bet",
			req:  BetRequest{UserID: "u1", Kind: BetNumber, Number: 0, Stake: 10},
		},
		{
			name: "valid color bet",
			req:  BetRequest{UserID: "u1", Kind: BetColor, Color: Red, Stake: 10},
		},
		{
			name:    "number out of range high",
			req:     BetRequest{UserID: "u1", Kind: BetNumber, Number: 37, Stake: 10},
			wantErr: true,
		},
		{
			name:    "number out of range low",
			req:     BetRequest{UserID: "u1", Kind: BetNumber, Number: -1, Stake: 10},
			wantErr: true,
		},
		{
			name:    "green is not a bettable color",
			req:     BetRequest{UserID: "u1", Kind: BetColor, Color: Green, Stake: 10},
			wantErr: true,
		},
		{
			name:    "unknown color",
			req:     BetRequest{UserID: "u1", Kind: BetColor, Color: "purple", Stake: 10},
			wantErr: true,
		},
		{
			name:    "zero stake",
			req:     BetRequest{UserID: "u1", Kind: BetNumber, Number: 5, Stake: 0},
			wantErr: true,
		},
		{
			name:    "negative stake",
			req:     BetRequest{UserID: "u1", Kind: BetColor, Color: Black, Stake: -10},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			req:     BetRequest{UserID: "u1", Kind: "street", Stake: 10},
			wantErr: true,
		},
		{
			name:    "missing user id",
			req:     BetRequest{Kind: BetNumber, Number: 5, Stake: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBet)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBetRequest_Payout(t *testing.T) {
	tests := []struct {
		name string
		req  BetRequest
		slot int
		want int64
	}{
		{
			name: "number hit returns 36x",
			req:  BetRequest{Kind: BetNumber, Number: 7, Stake: 10},
			slot: 7,
			want: 360,
		},
		{
			name: "number miss returns nothing",
			req:  BetRequest{Kind: BetNumber, Number: 7, Stake: 10},
			slot: 8,
			want: 0,
		},
		{
			name: "zero number hit pays like any other",
			req:  BetRequest{Kind: BetNumber, Number: 0, Stake: 5},
			slot: 0,
			want: 180,
		},
		{
			name: "color hit returns 2x",
			req:  BetRequest{Kind: BetColor, Color: Red, Stake: 20},
			slot: 1,
			want: 40,
		},
		{
			name: "color miss returns nothing",
			req:  BetRequest{Kind: BetColor, Color: Red, Stake: 20},
			slot: 2,
			want: 0,
		},
		{
			name: "green slot loses every color bet",
			req:  BetRequest{Kind: BetColor, Color: Red, Stake: 20},
			slot: 0,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.payout(tt.slot))
		})
	}
}
