package notification

import "errors"

// ErrUnknownChannel is returned when a channel is outside the recognized
// set. Dispatch logs it and moves on; it is never fatal.
var ErrUnknownChannel = errors.New("unknown notification channel")

// Medium is the delivery path a channel resolves to.
type Medium string

const (
	MediumSMS   Medium = "SMS"
	MediumEmail Medium = "EMAIL"
	MediumInApp Medium = "IN_APP"
	MediumWeb   Medium = "WEB"
)

// Channel is the closed enum over {SMS, EMAIL, IN_APP, WEB} x
// {transactional, investment}. The literal values match existing
// notification records.
type Channel string

const (
	ChannelSMSSent          Channel = "SMS_SENT"
	ChannelSMSInvestment    Channel = "SMS_INVESTMENT"
	ChannelEmailSent        Channel = "EMAIL_SENT"
	ChannelEmailInvestment  Channel = "EMAIL_INVESTMENT"
	ChannelInAppSent        Channel = "IN_APP_SENT"
	ChannelInAppInvestment  Channel = "IN_APP_INVESTMENT"
	ChannelWebSent          Channel = "WEB_SENT"
	ChannelWebInvestment    Channel = "WEB_INVESTMENT"
)

var channelMedia = map[Channel]Medium{
	ChannelSMSSent:         MediumSMS,
	ChannelSMSInvestment:   MediumSMS,
	ChannelEmailSent:       MediumEmail,
	ChannelEmailInvestment: MediumEmail,
	ChannelInAppSent:       MediumInApp,
	ChannelInAppInvestment: MediumInApp,
	ChannelWebSent:         MediumWeb,
	ChannelWebInvestment:   MediumWeb,
}

// ParseChannel validates a channel name read from configuration or input.
func ParseChannel(s string) (Channel, error) {
	c := Channel(s)
	if _, ok := channelMedia[c]; !ok {
		return "", ErrUnknownChannel
	}
	return c, nil
}

// Medium resolves the channel to its delivery path.
func (c Channel) Medium() (Medium, error) {
	m, ok := channelMedia[c]
	if !ok {
		return "", ErrUnknownChannel
	}
	return m, nil
}

// Transactional reports whether the channel denotes a transactional event
// (_SENT suffix).
func (c Channel) Transactional() bool {
	switch c {
	case ChannelSMSSent, ChannelEmailSent, ChannelInAppSent, ChannelWebSent:
		return true
	}
	return false
}

// Investment reports whether the channel denotes an investment-related
// event (_INVESTMENT suffix).
func (c Channel) Investment() bool {
	switch c {
	case ChannelSMSInvestment, ChannelEmailInvestment, ChannelInAppInvestment, ChannelWebInvestment:
		return true
	}
	return false
}
