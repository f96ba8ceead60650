package model

// resolveScreen is the one authorization decision in the client: given
// the screen a transition targets and whether a token is present, it
// returns the screen that actually renders.
//
// Rules:
//   - anonymous: protected screens (home, editor) resolve to login;
//     landing, login and register render as requested.
//   - authenticated: landing bounces to home; login and register stay
//     reachable without a redirect, matching the shipped behaviour of
//     the web client.
func resolveScreen(target screen, loggedIn bool) screen {
	if !loggedIn {
		switch target {
		case screenHome, screenEditor:
			return screenLogin
		}
		return target
	}
	if target == screenLanding {
		return screenHome
	}
	return target
}
