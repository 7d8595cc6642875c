/*
File    : sst/eval/snapshot_test.go

Snapshot-tests spec §8's six concrete scenarios as one combined
program, captured via stdout, grounded on
_examples/CWBudde-go-dws/internal/interp/fixture_test.go's go-snaps
usage.
*/
package eval

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain_SnapshotScenarios(t *testing.T) {
	src := `
num a = 7 / 2;
output(a);

fl b = 7 / 2.0;
output(b);

num i = 0;
while (i < 3):
	output(i);
	i = i + 1;
end;

newtype P:
	num x;
	num y;
	func sum():
		return x + y;
	end;
end;
P p = {3, 4};
output(p.sum());

func f(num n):
	if (n <= 1):
		return n;
	end;
	return f(n-1) + f(n-2);
end;
output(f(10));

str s = "hello";
output(s.size());
`
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""), nil)
	if err := ev.RunSource(src); err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}

	snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", t.Name()), out.String())
}
