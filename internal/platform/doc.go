// Package platform provides OS integration helpers: directory management and
// opening folders in the system file manager.
package platform
