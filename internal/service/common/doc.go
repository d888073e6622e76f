// Package common holds helpers shared by the checker and updater services.
package common
