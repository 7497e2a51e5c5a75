package models

// All lists every table in dependency order, for AutoMigrate in tests and tooling.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Channel{},
		&Video{},
		&Comment{},
		&View{},
		&Subscription{},
		&PaidSubscription{},
		&ChannelStrike{},
		&Report{},
	}
}
