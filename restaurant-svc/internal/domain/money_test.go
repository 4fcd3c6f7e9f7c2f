package domain_test

import (
	"encoding/json"
	"testing"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Money
		wantErr bool
	}{
		{in: "12", want: 1200},
		{in: "12.5", want: 1250},
		{in: "12.50", want: 1250},
		{in: "0.05", want: 5},
		{in: ".99", want: 99},
		{in: "-3.10", want: -310},
		{in: "12.505", wantErr: true},
		{in: "12.", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "1.-5", wantErr: true},
		{in: "1.+5", wantErr: true},
		{in: "--5", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "1 000", wantErr: true},
		{in: "99999999.99", want: 9999999999},
		{in: "00000000012.00", want: 1200},
		{in: "99999999999", wantErr: true},
		{in: "123456789", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.in, func(t *testing.T) {
			got, err := domain.ParseMoney(testCase.in)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestMoneyJSON(t *testing.T) {
	var body struct {
		Price domain.Money `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price": 19.9}`), &body))
	assert.Equal(t, domain.Money(1990), body.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "7.25"}`), &body))
	assert.Equal(t, domain.Money(725), body.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price": 1.999}`), &body))

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"7.25"}`, string(out))
}

func TestMoneyScan(t *testing.T) {
	var m domain.Money
	require.NoError(t, m.Scan([]byte("42.50")))
	assert.Equal(t, domain.Money(4250), m)

	require.NoError(t, m.Scan(int64(3)))
	assert.Equal(t, domain.Money(300), m)

	require.NoError(t, m.Scan(nil))
	assert.Zero(t, m)

	assert.Error(t, m.Scan(true))

	v, err := domain.Money(1005).Value()
	require.NoError(t, err)
	assert.Equal(t, "10.05", v)
}
