package out

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	pomodoroout "tomado/internal/modules/pomodoro/port/out"
)

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyInterface = "org.freedesktop.Notifications.Notify"
	notifyTimeoutMS = 5000
)

// DBusNotifier raises desktop notifications over the session bus. The bus
// connection is opened lazily so headless setups only pay when a
// notification actually fires.
type DBusNotifier struct {
	conn *dbus.Conn
}

func NewDBusNotifier() pomodoroout.Notifier {
	return &DBusNotifier{}
}

func (n *DBusNotifier) Notify(ctx context.Context, summary, body string) error {
	if n.conn == nil {
		conn, err := dbus.SessionBus()
		if err != nil {
			return fmt.Errorf("connect session bus: %w", err)
		}
		n.conn = conn
	}
	obj := n.conn.Object(notifyService, dbus.ObjectPath(notifyPath))
	// Args per the freedesktop notification spec: app name, replaces-id,
	// icon, summary, body, actions, hints, timeout.
	call := obj.CallWithContext(ctx, notifyInterface, 0,
		"tomado",
		uint32(0),
		"",
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(notifyTimeoutMS),
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}
