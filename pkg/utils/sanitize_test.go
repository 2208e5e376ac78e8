package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeString(t *testing.T) {
	require.Equal(t, "Selam Freight", SanitizeString("  Selam Freight  "))
	require.Equal(t, "&lt;script&gt;", SanitizeString("<script>"))
	require.Equal(t, "", SanitizeString("   "))
}

func TestSanitizePhone(t *testing.T) {
	require.Equal(t, "+251 911 203 040", SanitizePhone(" +251 911 203 040 "))
	require.Equal(t, "(011) 551-2345", SanitizePhone("(011) 551-2345"))
	require.Equal(t, "+251911", SanitizePhone("tel:+251911abc"))
}
