/*
Package sstf implements a Shortest-Seek-Time-First block-I/O request
scheduler in pure Go. Among all pending read/write requests it always
dispatches the one whose sector is numerically closest to the last
dispatched sector, minimizing cumulative seek distance.
*/
package sstf
