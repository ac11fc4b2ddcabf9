package access

import "testing"

func TestAuthorize(t *testing.T) {
	anonymous := Principal{}
	owner := Principal{ID: 7, Authenticated: true}
	stranger := Principal{ID: 8, Authenticated: true}
	staff := Principal{ID: 9, Authenticated: true, IsStaff: true}

	owned := OwnedBy(7)
	catalog := Unowned()

	cases := []struct {
		name      string
		principal Principal
		resource  Resource
		action    Action
		want      Decision
	}{
		{"anonymous read owned", anonymous, owned, ActionRead, Allow},
		{"anonymous write owned", anonymous, owned, ActionWrite, Deny},
		{"owner write own", owner, owned, ActionWrite, Allow},
		{"stranger write other's", stranger, owned, ActionWrite, Deny},
		{"stranger read other's", stranger, owned, ActionRead, Allow},
		{"staff write any", staff, owned, ActionWrite, Allow},
		{"owner read own", owner, owned, ActionRead, Allow},
		{"anonymous read catalog", anonymous, catalog, ActionRead, Allow},
		{"authenticated write catalog", owner, catalog, ActionWrite, Deny},
		{"staff write catalog", staff, catalog, ActionWrite, Allow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Authorize(c.principal, c.resource, c.action); got != c.want {
				t.Errorf("Authorize(%+v, %+v, %v) = %v, want %v", c.principal, c.resource, c.action, got, c.want)
			}
		})
	}
}
