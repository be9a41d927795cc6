package api

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/ent/campaigncontact"
)

func strp(s string) *string { return &s }

func timep(t time.Time) *time.Time { return &t }

func TestWriteCampaignReport(t *testing.T) {
	sent := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	delivered := sent.Add(2 * time.Second)
	read := sent.Add(time.Minute)

	rows := []*ent.CampaignContact{
		{
			ID:          "row-1",
			ContactID:   "c-1",
			Phone:       "+5511987654321",
			Name:        "Ana, \"a\"",
			Email:       "ana@example.com",
			Status:      campaigncontact.StatusRead,
			MessageID:   strp("wamid.1"),
			SentAt:      timep(sent),
			DeliveredAt: timep(delivered),
			ReadAt:      timep(read),
		},
		{
			ID:           "row-2",
			ContactID:    "c-2",
			Phone:        "+5511987654322",
			Status:       campaigncontact.StatusFailed,
			ErrorMessage: strp("policy_rejected"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCampaignReport(&buf, rows))
	out := buf.Bytes()

	// BOM first, then the fixed header.
	require.True(t, bytes.HasPrefix(out, utf8BOM))
	lines := strings.Split(strings.TrimRight(string(out[3:]), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t,
		"contact_id,name,phone,email,status,message_id,sent_at,delivered_at,read_at,error",
		lines[0])

	// RFC 4180: the comma-and-quote name is quoted with doubled quotes.
	assert.Contains(t, lines[1], `"Ana, ""a"""`)
	assert.Contains(t, lines[1], "2026-07-01T10:00:00Z")
	assert.Contains(t, lines[1], "wamid.1")

	// Absent timestamps render empty, error lands in the last column.
	assert.Equal(t, "c-2,,+5511987654322,,failed,,,,,policy_rejected", lines[2])
}
