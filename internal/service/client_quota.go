package service

import "github.com/MKhiriev/go-mail-notes/models"

// ApplyQuota returns current updated from resp. Used and Limit are replaced
// only when the response carries them; imported is added to
// ImportsThisPeriod.
func ApplyQuota(current models.QuotaState, resp models.DownloadResponse, imported int) models.QuotaState {
	next := current
	if resp.QuotaUsed != nil {
		next.Used = *resp.QuotaUsed
	}
	if resp.QuotaLimit != nil {
		next.Limit = *resp.QuotaLimit
	}
	if imported > 0 {
		next.ImportsThisPeriod += int64(imported)
	}
	return next
}
