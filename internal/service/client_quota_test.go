package service

import (
	"testing"

	"github.com/MKhiriev/go-mail-notes/models"
	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func TestApplyQuota(t *testing.T) {
	current := models.QuotaState{Used: 3, Limit: 50, ImportsThisPeriod: 7}

	tests := []struct {
		name     string
		resp     models.DownloadResponse
		imported int
		want     models.QuotaState
	}{
		{
			name:     "both fields present",
			resp:     models.DownloadResponse{QuotaUsed: ptr(5), QuotaLimit: ptr(100)},
			imported: 2,
			want:     models.QuotaState{Used: 5, Limit: 100, ImportsThisPeriod: 9},
		},
		{
			name:     "absent fields keep prior values",
			resp:     models.DownloadResponse{},
			imported: 0,
			want:     current,
		},
		{
			name:     "partial response",
			resp:     models.DownloadResponse{QuotaUsed: ptr(0)},
			imported: 1,
			want:     models.QuotaState{Used: 0, Limit: 50, ImportsThisPeriod: 8},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyQuota(current, tt.resp, tt.imported))
		})
	}
}

func TestApplyQuota_DoesNotMutateInput(t *testing.T) {
	current := models.QuotaState{Used: 1}
	_ = ApplyQuota(current, models.DownloadResponse{QuotaUsed: ptr(9)}, 4)
	assert.Equal(t, models.QuotaState{Used: 1}, current)
}
