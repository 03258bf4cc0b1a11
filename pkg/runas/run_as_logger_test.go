package runas_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestZerologRunAsLogger(t *testing.T) {
	var buffer bytes.Buffer
	logger := runas.NewZerologRunAsLogger(zerolog.New(&buffer))

	logger.LogRunAs(runas.Invocation{
		ToolPath:  "/opt/runAs/bin/runAs.sh",
		Arguments: runas.NewParameterArguments("/staging/0001.args", "/staging/0002.sh", "P@ss"),
		Resources: []runas.Resource{
			&runas.FileResource{Path: "/staging/0001.args", Content: "-u:user1\n"},
			&runas.FileResource{Path: "/staging/0002.sh", Content: "#!/bin/sh\n"},
			runas.NewAccessControlResource(nil),
		},
	})
	require.NotContains(t, buffer.String(), "P@ss")

	var record struct {
		Level       string   `json:"level"`
		Message     string   `json:"message"`
		ToolPath    string   `json:"tool_path"`
		Arguments   []string `json:"arguments"`
		StagedFiles int      `json:"staged_files"`
	}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &record))
	require.Equal(t, "info", record.Level)
	require.Equal(t, "Running build step as another user", record.Message)
	require.Equal(t, "/opt/runAs/bin/runAs.sh", record.ToolPath)
	require.Equal(t, []string{"/staging/0001.args", "/staging/0002.sh", "********"}, record.Arguments)
	require.Equal(t, 2, record.StagedFiles)
}
