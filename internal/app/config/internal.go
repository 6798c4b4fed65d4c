package config

type InternalConfig struct {
	App      App
	JWT      JWT
	Mailer   Mailer
	RabbitMQ AppRabbitMQ
	Payment  Payment
	Chat     Chat
	Admin    Admin
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	FrontendDomain             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	SessionExpiredTimeInHours  int
	DocumentLinkExpiryInHours  int
	RequestBodyLimitInMegabyte int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Mailer struct {
	EmailSender string
}

type AppRabbitMQ struct {
	MailerQueue string
}

type Payment struct {
	BaseUrl                 string
	ApiKey                  string
	MbwayChannel            string
	RequestTimeoutInSeconds int
}

type Chat struct {
	BaseUrl                 string
	ApiKey                  string
	Model                   string
	SystemPrompt            string
	MaxHistoryTurns         int
	RequestsPerMinute       int
	HistoryExpiryInMinutes  int
	RequestTimeoutInSeconds int
}

// Admin carries the staff authorization policy inputs. StaffEmails is the
// externally supplied allow-list consulted by the capability check; it is
// configuration, never a constant in logic.
type Admin struct {
	StaffEmails []string
}
