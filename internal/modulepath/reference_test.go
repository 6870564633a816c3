package modulepath_test

import (
	"testing"

	"github.com/specialistvlad/modfuncs/internal/modulepath"
	"github.com/stretchr/testify/require"
)

func TestSplitReference(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		ref        string
		wantModule string
		wantRel    string
		wantOK     bool
	}{
		{name: "with modules segment", ref: "puppet:///modules/my_module/exists", wantModule: "my_module", wantRel: "exists", wantOK: true},
		{name: "without modules segment", ref: "puppet:///my_module/exists", wantModule: "my_module", wantRel: "exists", wantOK: true},
		{name: "nested relative path", ref: "puppet:///modules/ssh/keys/id_rsa.pub", wantModule: "ssh", wantRel: "keys/id_rsa.pub", wantOK: true},
		{name: "module only", ref: "puppet:///modules/ssh", wantModule: "ssh", wantRel: "", wantOK: true},
		{name: "module named modules", ref: "puppet:///modules", wantModule: "modules", wantRel: "", wantOK: true},
		{name: "bare scheme", ref: "puppet:///", wantModule: "", wantRel: "", wantOK: true},
		{name: "plain absolute path", ref: "/etc/resolv.conf", wantOK: false},
		{name: "two-slash scheme is not ours", ref: "puppet://server/modules/x", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			module, rel, ok := modulepath.SplitReference(tc.ref)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.wantModule, module)
			require.Equal(t, tc.wantRel, rel)
		})
	}
}

func TestIsModuleReference(t *testing.T) {
	require.True(t, modulepath.IsModuleReference("puppet:///x/y"))
	require.False(t, modulepath.IsModuleReference("puppet://x/y"))
	require.False(t, modulepath.IsModuleReference("relative/puppet:///x"))
}
