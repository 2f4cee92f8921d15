package webpath

const (
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"
	Home    = "/"

	Api              = "/api"
	ApiHome          = Api + Home
	ApiGames         = Api + "/games"
	ApiMyGames       = Api + "/games/my"
	ApiJoinGame      = Api + "/games/:id/join"
	ApiLeaveGame     = Api + "/games/:id/leave"
	ApiTrainings     = Api + "/trainings"
	ApiMyTrainings   = Api + "/trainings/my"
	ApiJoinTraining  = Api + "/trainings/:id/join"
	ApiLeaveTraining = Api + "/trainings/:id/leave"
	ApiWaitlist      = Api + "/trainings/:id/waitlist"
	ApiProfile       = Api + "/profile"

	ApiAdminUsers    = Api + "/admin/users"
	ApiAdminUser     = Api + "/admin/users/:id"
	ApiAdminSchedule = Api + "/admin/schedule/generate"
)
