package model

import "testing"

func TestGetDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		task     InstallTask
		expected string
	}{
		{
			name:     "installed name wins",
			task:     InstallTask{Kind: TaskKindMod, Source: "/tmp/cool-mod.zip", InstalledName: "CoolMod"},
			expected: "CoolMod",
		},
		{
			name:     "runtime task without name",
			task:     InstallTask{Kind: TaskKindRuntime, Source: "https://example.com/ue4ss.zip"},
			expected: "UE4SS",
		},
		{
			name:     "mod zip path stripped to base name",
			task:     InstallTask{Kind: TaskKindMod, Source: "/downloads/SprintFix.zip"},
			expected: "SprintFix",
		},
		{
			name:     "url source kept as-is",
			task:     InstallTask{Kind: TaskKindMod, Source: "https://example.com/mods/a.zip"},
			expected: "https://example.com/mods/a.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.GetDisplayTitle(); got != tt.expected {
				t.Errorf("GetDisplayTitle() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestGetProgressLabel(t *testing.T) {
	task := InstallTask{Status: TaskStatusExtracting, Percent: 40}
	if got := task.GetProgressLabel(); got != "40%" {
		t.Errorf("GetProgressLabel() = %q, expected 40%%", got)
	}

	unknown := InstallTask{Status: TaskStatusDownloading, BytesTotal: 0, Percent: 0}
	if got := unknown.GetProgressLabel(); got != "…" {
		t.Errorf("GetProgressLabel() with unknown size = %q, expected …", got)
	}
}
