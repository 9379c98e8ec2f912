// This file is part of PrimeHack.
//
// PrimeHack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PrimeHack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PrimeHack.  If not, see <https://www.gnu.org/licenses/>.

package notifications

// Notice describes an event in the mod engine.
type Notice string

// List of defined notifications.
const (
	// the detected game or region has changed. all mods have been reset
	NotifyGameChanged Notice = "NotifyGameChanged"

	// notifications sent by the ELF mod loader
	NotifyModLoaded     Notice = "NotifyModLoaded"
	NotifyModLoadFailed Notice = "NotifyModLoadFailed"
	NotifyModSuspended  Notice = "NotifyModSuspended"
	NotifyModResumed    Notice = "NotifyModResumed"
	NotifyModShutdown   Notice = "NotifyModShutdown"
	NotifyModReleased   Notice = "NotifyModReleased"
)

// Notify is implemented by the host program to receive notifications.
type Notify interface {
	Notify(notice Notice) error
}
