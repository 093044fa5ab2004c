package router

import "github.com/dmitrijs2005/bookdesk/internal/client/notify"

type Action int

const (
	Proceed Action = iota
	Redirect
)

const (
	msgLoginFirst   = "Please log in first"
	msgAccessDenied = "You do not have permission to access this page"
)

type Notice struct {
	Level   notify.Level
	Message string
}

// Decision is the outcome of the guard for one transition. For Redirect the
// original transition is aborted and To names the replacement path.
type Decision struct {
	Action Action
	To     string
	Notice *Notice
}

// Decide is the navigation guard. Rules are applied in order:
//
//  1. auth required and logged out: warn and go to login
//  2. admin required and not admin: deny and go home
//  3. login or register while logged in: go home
//  4. otherwise proceed
func Decide(target Route, isLoggedIn, isAdmin bool) Decision {
	switch {
	case target.RequiresAuth && !isLoggedIn:
		return Decision{
			Action: Redirect,
			To:     LoginPath,
			Notice: &Notice{Level: notify.Warning, Message: msgLoginFirst},
		}
	case target.RequiresAuth && target.RequiresAdmin && !isAdmin:
		return Decision{
			Action: Redirect,
			To:     HomePath,
			Notice: &Notice{Level: notify.Error, Message: msgAccessDenied},
		}
	case isAuthScreen(target) && isLoggedIn:
		return Decision{Action: Redirect, To: HomePath}
	default:
		return Decision{Action: Proceed}
	}
}

func isAuthScreen(r Route) bool {
	return r.Path == LoginPath || r.Path == RegisterPath
}
